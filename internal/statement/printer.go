// Package statement 負責將 bank 套件的資料呈現為 console 文字。
// 資料模型不知道任何格式細節，所有排版集中在此。
package statement

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"banksim/internal/bank"
)

// TimeLayout 為 DD/MM/YYYY HH:MM:SS。
const TimeLayout = "02/01/2006 15:04:05"

const noTransactions = "No transactions recorded."

type Options struct {
	Currency string
	Width    int
}

type Printer struct {
	w     io.Writer
	opts  Options
	title cases.Caser
}

func NewPrinter(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts, title: cases.Title(language.Und)}
}

// PrintStatement 印出帳戶對帳單。
// 無交易時印出提示並回傳 bank.ErrEmptyHistory。
func (p *Printer) PrintStatement(acct *bank.Account) error {
	st, err := acct.Statement()
	if err != nil {
		if _, werr := fmt.Fprintln(p.w, noTransactions); werr != nil {
			return werr
		}
		return err
	}

	var b strings.Builder
	b.WriteString(Center("Bank Statement", p.opts.Width, '-'))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Account #%d - %s\n\n", st.AccountID, st.Owner)
	for _, r := range st.Records {
		fmt.Fprintf(&b, "Type: %s\n", p.title.String(r.Kind.String()))
		fmt.Fprintf(&b, "Amount: %s\n", FormatMoney(p.opts.Currency, r.Amount))
		fmt.Fprintf(&b, "Date: %s\n\n", r.Time.Format(TimeLayout))
	}
	fmt.Fprintf(&b, "Balance: %s\n", FormatMoney(p.opts.Currency, st.Balance))
	b.WriteString(strings.Repeat("-", p.opts.Width))
	b.WriteByte('\n')

	_, err = io.WriteString(p.w, b.String())
	return err
}

// PrintListing 依建立順序列出所有帳戶摘要與總數。
func (p *Printer) PrintListing(reg *bank.Registry) error {
	var b strings.Builder
	b.WriteString(Center("Accounts", p.opts.Width, '-'))
	b.WriteByte('\n')
	for s := range reg.Summaries() {
		b.WriteString(s)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Total accounts: %d\n", reg.Len())

	_, err := io.WriteString(p.w, b.String())
	return err
}

// FormatMoney 以兩位小數輸出金額，例如 "R$ 100.00"。
func FormatMoney(symbol string, d decimal.Decimal) string {
	return symbol + " " + d.StringFixed(2)
}

// Center 將 s 置中於 width 寬度，兩側以 fill 補齊；奇數差額補在右側。
func Center(s string, width int, fill rune) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	pad := width - n
	left := pad / 2
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), pad-left)
}
