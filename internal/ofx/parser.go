// Package ofx parses OFX/QFX bank exports into ledger transactions.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/neonfinance/neon/internal/model"
	"github.com/neonfinance/neon/internal/money"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, func(match string) string {
		return strings.ToUpper(match)
	})

	// Fix SGML-style opening tags missing their closing bracket
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns candidate transactions for the
// given ledger account. Statement amounts carry their own sign; debits become
// expenses and credits become income, both stored with non-negative amounts.
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader, accountID string) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			txns, err := p.convertStatement(stmt.BankTranList, accountID)
			if err != nil {
				slog.Warn("Failed to process bank statement",
					"account", stmt.BankAcctFrom.AcctID,
					"error", err)
				continue
			}
			transactions = append(transactions, txns...)
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			txns, err := p.convertStatement(stmt.BankTranList, accountID)
			if err != nil {
				slog.Warn("Failed to process credit card statement",
					"account", stmt.CCAcctFrom.AcctID,
					"error", err)
				continue
			}
			transactions = append(transactions, txns...)
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

// convertStatement converts an OFX transaction list to ledger transactions.
func (p *Parser) convertStatement(list *ofxgo.TransactionList, accountID string) ([]model.Transaction, error) {
	if list == nil {
		return nil, nil
	}

	transactions := make([]model.Transaction, 0, len(list.Transactions))
	for _, ofxTx := range list.Transactions {
		tx, err := p.convertTransaction(ofxTx, accountID)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// convertTransaction converts a single OFX transaction. OFX uses negative
// amounts for debits; the ledger keeps amounts non-negative and carries the
// direction on the transaction type instead.
func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction, accountID string) (model.Transaction, error) {
	txType := model.TransactionIncome
	rat := &ofxTx.TrnAmt.Rat
	if rat.Sign() < 0 {
		txType = model.TransactionExpense
		rat = new(big.Rat).Neg(rat)
	}

	// FloatString keeps exact cents; going through float64 would not.
	amount, err := money.Parse(rat.FloatString(2))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("invalid amount for %s: %w", ofxTx.FiTID, err)
	}

	posted := ofxTx.DtPosted.Time
	tx := model.Transaction{
		ID:          string(ofxTx.FiTID),
		Description: p.extractDescription(ofxTx),
		Amount:      amount,
		Date:        model.NewDate(posted.Year(), posted.Month(), posted.Day()),
		Type:        txType,
		AccountID:   accountID,
	}

	return tx, nil
}

// extractDescription tries to get a clean description from OFX data.
func (p *Parser) extractDescription(tx ofxgo.Transaction) string {
	// Prefer PAYEE if available (cleaner merchant name)
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := strings.TrimSpace(string(tx.Name))

	// Sometimes MEMO has better merchant info than a generic NAME
	if tx.Memo != "" && isGenericDescription(name) {
		name = strings.TrimSpace(string(tx.Memo))
	}

	// Remove common processor prefixes
	prefixes := []string{
		"POS ",
		"DEBIT CARD ",
		"CHECKCARD ",
		"PURCHASE ",
		"SQ *",
		"TST* ",
		"PAYPAL *",
	}
	upper := strings.ToUpper(name)
	for _, prefix := range prefixes {
		if strings.HasPrefix(upper, prefix) {
			name = strings.TrimSpace(name[len(prefix):])
			break
		}
	}

	if name == "" {
		name = "Imported transaction"
	}

	return name
}

// isGenericDescription reports whether a NAME field carries no useful
// merchant information.
func isGenericDescription(name string) bool {
	generic := []string{
		"DEBIT",
		"CREDIT",
		"CHECK",
		"WITHDRAWAL",
		"DEPOSIT",
		"PAYMENT",
		"POS TRANSACTION",
	}
	upper := strings.ToUpper(strings.TrimSpace(name))
	for _, g := range generic {
		if upper == g {
			return true
		}
	}
	return false
}
