package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/itsatony/go-vartext"
	"go.uber.org/zap"
)

// sourceOptions are the value and syntax flags shared by render and check
type sourceOptions struct {
	Templates []string `short:"t" long:"template" description:"Template file (- for stdin)" required:"true"`
	Data      string   `short:"d" long:"data" description:"JSON values"`
	Values    string   `short:"f" long:"values" description:"Values file (.json, .yaml, .yml, .toml)"`
	Env       bool     `long:"env" description:"Resolve names from the environment"`
	EnvPrefix string   `long:"env-prefix" description:"Prefix for environment lookups"`
	Open      string   `long:"open" description:"Open delimiter" default:"{{"`
	Close     string   `long:"close" description:"Close delimiter" default:"}}"`
}

// hasValues reports whether any value source was given
func (o *sourceOptions) hasValues() bool {
	return o.Data != "" || o.Values != "" || o.Env
}

// sourceError marks a failure as bad input rather than a runtime failure
type sourceError struct {
	msg   string
	cause error
}

func (e *sourceError) Error() string { return fmt.Sprintf("%s: %v", e.msg, e.cause) }
func (e *sourceError) Unwrap() error { return e.cause }

// buildResolver chains the configured value sources in lookup order:
// inline JSON, values file, database, environment. The returned close
// function releases the database connection, if any.
func buildResolver(ctx context.Context, opts *sourceOptions, dsn, table string, logger *zap.Logger) (vartext.ChainResolver, func(), error) {
	var chain vartext.ChainResolver
	closeFn := func() {}

	if opts.Data != "" {
		values, err := vartext.LoadValues(strings.NewReader(opts.Data), vartext.FormatJSON)
		if err != nil {
			return nil, closeFn, &sourceError{msg: ErrMsgLoadValuesFailed, cause: err}
		}
		chain = append(chain, values)
	}

	if opts.Values != "" {
		values, err := vartext.LoadValuesFile(opts.Values)
		if err != nil {
			return nil, closeFn, &sourceError{msg: ErrMsgLoadValuesFailed, cause: err}
		}
		chain = append(chain, values)
	}

	if dsn != "" {
		config := vartext.DefaultSQLConfig()
		config.ConnectionString = dsn
		config.Table = table
		config.Logger = logger
		sqlResolver, err := vartext.NewSQLResolver(ctx, config)
		if err != nil {
			return nil, closeFn, fmt.Errorf("%s: %w", ErrMsgConnectFailed, err)
		}
		chain = append(chain, sqlResolver)
		closeFn = func() { _ = sqlResolver.Close() }
	}

	if opts.Env {
		chain = append(chain, vartext.EnvResolver{Prefix: opts.EnvPrefix})
	}

	return chain, closeFn, nil
}
