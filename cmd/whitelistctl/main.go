// whitelistctl is the manual administration path: whitelist seeding and
// role/manager assignment, which the HTTP surface deliberately does not
// expose (beyond the admin whitelist endpoint).
//
//	whitelistctl -add alice@corp.example
//	whitelistctl -email bob@corp.example -role Manager
//	whitelistctl -email carol@corp.example -manager bob@corp.example
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Alubalulu/sales-forecast-app/internal/models"
	repo "github.com/Alubalulu/sales-forecast-app/internal/repository"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	var (
		add     = flag.String("add", "", "email to append to the whitelist")
		email   = flag.String("email", "", "email of the user to modify")
		role    = flag.String("role", "", "role to assign: Individual, Manager or Admin")
		manager = flag.String("manager", "", "email of the manager to assign")
	)
	flag.Parse()

	_ = godotenv.Load()

	db, err := sqlx.Connect("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		fatal("failed to establish connection with database: %v", err)
	}

	ctx := context.Background()
	users := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	whitelist := repo.NewWhitelistRepo(db, trmsqlx.DefaultCtxGetter)

	switch {
	case *add != "":
		if err := whitelist.Add(ctx, *add); err != nil {
			fatal("failed to whitelist %s: %v", *add, err)
		}
		fmt.Printf("whitelisted %s\n", *add)

	case *email != "" && *role != "":
		r := models.Role(*role)
		if !r.Valid() {
			fatal("unknown role %q", *role)
		}
		if err := users.SetRole(ctx, *email, r); err != nil {
			fatal("failed to set role for %s: %v", *email, err)
		}
		fmt.Printf("%s is now %s\n", *email, r)

	case *email != "" && *manager != "":
		if err := users.SetManager(ctx, *email, *manager); err != nil {
			fatal("failed to set manager for %s: %v", *email, err)
		}
		fmt.Printf("%s now reports to %s\n", *email, *manager)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
