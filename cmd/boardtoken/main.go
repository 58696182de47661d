// boardtoken issues an operator JWT for the board's write API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/artem13815/resumeboard/pkg/config"
	"github.com/artem13815/resumeboard/pkg/logger"
	"github.com/artem13815/resumeboard/pkg/security/jwt"
)

func main() {
	cfg, err := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	subject := flag.String("sub", "", "operator name (required)")
	scopes := flag.String("scopes", jwt.ScopeBoardWrite, "comma-separated scopes")
	ttl := flag.Duration("ttl", cfg.JWTTTL(), "token lifetime")
	flag.Parse()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	if *ttl <= 0 {
		*ttl = time.Hour
	}

	var list []string
	for _, s := range strings.Split(*scopes, ",") {
		if s = strings.TrimSpace(s); s != "" {
			list = append(list, s)
		}
	}

	token, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, *ttl).Generate(context.Background(), *subject, list...)
	if err != nil {
		log.WithError(err).Fatal("generate token")
	}
	fmt.Fprintln(os.Stdout, token)
}
