// Command ledger-cli operates on the ledger database directly, authenticating
// with the same document and password the HTTP API uses.
//
//	LEDGER_DOCUMENT=56967915576 ledger-cli balance <account_id>
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/ledger"
	"github.com/amirasaad/ledger/pkg/domain/person"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

const usage = `Usage: ledger-cli <command> [arguments]

Commands:
  accounts
  balance  <account_id>
  history  <account_id>
  deposit  <account_id> <amount> [description]
  withdraw <account_id> <amount> [description]
  transfer <account_id> <receiver_account_id> <amount> [description]
  revert   <account_id> <transaction_id>
  token

The document is read from LEDGER_DOCUMENT or prompted for.`

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	errColor  = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
	moneyFmt  = color.New(color.FgCyan).SprintFunc()
	errNoArgs = errors.New("missing arguments")

	stdin = bufio.NewReader(os.Stdin)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	if err := run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		_, _ = errColor.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, errNoArgs) {
			fmt.Fprintln(os.Stderr, usage)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	a := app.New(deps, cfg)

	p, err := login(ctx, a)
	if err != nil {
		return err
	}

	switch cmd {
	case "accounts":
		return listAccounts(ctx, a, p)
	case "balance":
		return withAccount(ctx, a, p, args, 1, func(accountID uuid.UUID) error {
			balance, err := a.TransactionService.FetchBalance(ctx, accountID)
			if err != nil {
				return err
			}
			fmt.Printf("Account %s balance: %s\n", accountID, moneyFmt(balance.StringFixed(2)))
			return nil
		})
	case "history":
		return withAccount(ctx, a, p, args, 1, func(accountID uuid.UUID) error {
			return history(ctx, a, accountID)
		})
	case "deposit", "withdraw":
		return withAccount(ctx, a, p, args, 2, func(accountID uuid.UUID) error {
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}
			amount = amount.Abs()
			if cmd == "withdraw" {
				amount = amount.Neg()
			}
			tx, err := a.TransactionService.CreateOne(ctx, accountID, amount, description(args, 2, cmd))
			if err != nil {
				return err
			}
			_, _ = okColor.Printf("Recorded %s on %s (transaction %s)\n", moneyFmt(ledger.Round(tx.Value).StringFixed(2)), accountID, tx.ID)
			return nil
		})
	case "transfer":
		return withAccount(ctx, a, p, args, 3, func(accountID uuid.UUID) error {
			receiverID, err := uuid.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid receiver account id: %w", err)
			}
			amount, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}
			tx, err := a.TransactionService.ExecTransfer(ctx, accountID, receiverID, amount, description(args, 3, "transfer"))
			if err != nil {
				return err
			}
			_, _ = okColor.Printf("Transferred %s to %s (transaction %s)\n", moneyFmt(ledger.Round(tx.Value).StringFixed(2)), receiverID, tx.ID)
			return nil
		})
	case "revert":
		return withAccount(ctx, a, p, args, 2, func(accountID uuid.UUID) error {
			transactionID, err := uuid.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid transaction id: %w", err)
			}
			rev, err := a.TransactionService.ExecRevert(ctx, accountID, transactionID)
			if err != nil {
				return err
			}
			_, _ = okColor.Printf("Reverted %s of %s (refund %s)\n", transactionID, moneyFmt(ledger.Round(rev.OriginalValue).StringFixed(2)), rev.Refund.ID)
			return nil
		})
	case "token":
		if cfg.Auth == nil || cfg.Auth.Jwt == nil {
			return errors.New("AUTH_JWT_SECRET is not set")
		}
		token, err := a.AuthService.GenerateToken(ctx, p)
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errNoArgs, cmd)
	}
}

// login reads the credentials and checks them against the person table.
func login(ctx context.Context, a *app.App) (*person.Person, error) {
	document := os.Getenv("LEDGER_DOCUMENT")
	if document == "" {
		fmt.Print("Document: ")
		line, err := stdin.ReadString('\n')
		if err != nil {
			return nil, err
		}
		document = strings.TrimSpace(line)
	}
	password, err := readPassword()
	if err != nil {
		return nil, err
	}
	return a.AuthService.Login(ctx, document, password)
}

// readPassword prompts without echo on a terminal and reads a plain line
// otherwise, so the CLI can be scripted.
func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := stdin.ReadString('\n')
		return strings.TrimSpace(line), err
	}
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func withAccount(
	ctx context.Context,
	a *app.App,
	p *person.Person,
	args []string,
	required int,
	fn func(accountID uuid.UUID) error,
) error {
	if len(args) < required {
		return errNoArgs
	}
	accountID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid account id: %w", err)
	}
	if err := a.AccountService.Authorize(ctx, p.ID, accountID); err != nil {
		return err
	}
	return fn(accountID)
}

func listAccounts(ctx context.Context, a *app.App, p *person.Person) error {
	accounts, err := a.AccountService.List(ctx, p.ID)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		_, _ = dimColor.Println("No accounts")
		return nil
	}
	for _, acc := range accounts {
		fmt.Printf("%s  %s/%s\n", acc.ID, acc.Branch, acc.Number)
	}
	return nil
}

func history(ctx context.Context, a *app.App, accountID uuid.UUID) error {
	txs, err := a.TransactionService.FetchAll(ctx, accountID)
	if err != nil {
		return err
	}
	for _, tx := range txs {
		value := ledger.Round(tx.Value).StringFixed(2)
		line := fmt.Sprintf("%s  %s  %10s  %s", tx.CreatedAt.Format("2006-01-02 15:04:05"), tx.ID, value, tx.Description)
		if tx.Reversed() {
			_, _ = dimColor.Println(line + "  (reversed)")
			continue
		}
		fmt.Println(line)
	}
	return nil
}

func description(args []string, idx int, fallback string) string {
	if len(args) > idx {
		return strings.Join(args[idx:], " ")
	}
	return fallback
}
