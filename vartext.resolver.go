package vartext

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/itsatony/go-vartext/internal"
	"github.com/samber/lo"
)

// NameResolver supplies replacement text for variables. Resolve returns
// ErrNameNotFound for unknown names and ErrKindMismatch for values that do
// not fit the variable kind; any other error is a resolver failure. The
// context is the one passed to Render and is not otherwise used by the
// pipeline.
type NameResolver = internal.NameResolver

// NameLister is an optional interface for resolvers that can enumerate
// their names. It enables "did you mean" suggestions.
type NameLister = internal.NameLister

// ResolverFunc adapts a function to the NameResolver interface.
type ResolverFunc func(ctx context.Context, name string, kind VariableKind) (string, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(ctx context.Context, name string, kind VariableKind) (string, error) {
	return f(ctx, name, kind)
}

// ChainResolver asks each resolver in turn and returns the first answer
// that is not ErrNameNotFound.
type ChainResolver []NameResolver

// Resolve implements NameResolver.
func (c ChainResolver) Resolve(ctx context.Context, name string, kind VariableKind) (string, error) {
	for _, r := range c {
		text, err := r.Resolve(ctx, name, kind)
		if errors.Is(err, ErrNameNotFound) {
			continue
		}
		return text, err
	}
	return "", ErrNameNotFound
}

// Names returns the names of every resolver in the chain that can list them.
func (c ChainResolver) Names() []string {
	var names []string
	for _, r := range c {
		if lister, ok := r.(NameLister); ok {
			names = append(names, lister.Names()...)
		}
	}
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}

// EnvResolver resolves variables from the process environment. A name is
// looked up as given (after Prefix), then upper-cased with '.' and '-'
// replaced by '_', so {{ db.host }} finds DB_HOST. Spread references split
// the value on the OS path list separator.
type EnvResolver struct {
	Prefix string
}

var envNameReplacer = strings.NewReplacer(".", "_", "-", "_")

// Resolve implements NameResolver.
func (e EnvResolver) Resolve(_ context.Context, name string, kind VariableKind) (string, error) {
	value, ok := os.LookupEnv(e.Prefix + name)
	if !ok {
		value, ok = os.LookupEnv(e.Prefix + strings.ToUpper(envNameReplacer.Replace(name)))
	}
	if !ok {
		return "", ErrNameNotFound
	}
	if kind == KindSpread {
		items := lo.Compact(filepath.SplitList(value))
		return strings.Join(items, DefaultListSeparator), nil
	}
	return value, nil
}

// Names returns the environment variable names carrying Prefix, without it.
func (e EnvResolver) Names() []string {
	names := lo.FilterMap(os.Environ(), func(kv string, _ int) (string, bool) {
		key, _, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(key, e.Prefix) || key == e.Prefix {
			return "", false
		}
		return strings.TrimPrefix(key, e.Prefix), true
	})
	sort.Strings(names)
	return names
}
