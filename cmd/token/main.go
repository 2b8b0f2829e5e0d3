// Command token issues an EDITOR access token signed with JWT_SECRET, for
// calling the directory's write routes.  The lifetime defaults to
// ACCESS_TOKEN_TTL_MIN.
//
//	token -sub alice -ttl 2h
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/iliyamo/showbook/internal/config"
	"github.com/iliyamo/showbook/internal/utils"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("reading .env failed", "error", err)
		os.Exit(1)
	}
	cfg, err := config.LoadTokenConfig()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	sub := flag.String("sub", "editor", "token subject (editor name)")
	ttl := flag.Duration("ttl", cfg.TTL, "token lifetime")
	flag.Parse()

	tok, err := utils.NewAccessToken(cfg.Secret, *sub, utils.RoleEditor, *ttl)
	if err != nil {
		slog.Error("signing token failed", "error", err)
		os.Exit(1)
	}
	fmt.Println(tok.Token)
	fmt.Fprintf(os.Stderr, "expires %s\n", tok.Exp.Format(time.RFC3339))
}
