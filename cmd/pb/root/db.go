package root

import (
	"context"
	"fmt"
	"io"
	"strings"

	"pitchbuild/internal/catalog"
	"pitchbuild/internal/config"
	"pitchbuild/internal/engine"
	"pitchbuild/internal/storage"
)

func loadRules() (config.Config, engine.Ruleset, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, engine.Ruleset{}, err
	}
	rules, err := cfg.Rules()
	if err != nil {
		return config.Config{}, engine.Ruleset{}, err
	}
	return cfg, rules, nil
}

// openSession wires config, the sqlite build store and the catalog into a
// fresh session. Logs go to logOut.
func openSession(ctx context.Context, logOut io.Writer) (*engine.Session, *catalog.Catalog, func(), error) {
	cfg, rules, err := loadRules()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	cat := catalog.Default()
	repo := engine.NewKVBuildRepository(storage.NewKVRepo(db, cfg.StoreQuota))
	sess, err := engine.NewSession(rules,
		engine.WithCatalog(cat),
		engine.WithRepository(repo),
		engine.WithLogger(cfg.Logger(logOut)),
	)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return sess, cat, cleanup, nil
}

// resolveArchetype accepts "Role/Name" or a bare archetype name.
func resolveArchetype(cat *catalog.Catalog, ref string) (catalog.Archetype, error) {
	if role, name, ok := strings.Cut(ref, "/"); ok {
		if a, found := cat.Find(role, name); found {
			return a, nil
		}
	} else if a, found := cat.FindByName(ref); found {
		return a, nil
	}
	return catalog.Archetype{}, fmt.Errorf("%w: %s", engine.ErrUnknownArchetype, ref)
}

// resolveAttr maps user input onto an attribute name of set.
func resolveAttr(set engine.AttributeSet, in string) (string, error) {
	want := catalog.NormalizeAttrName(in)
	for _, n := range set.Names() {
		if strings.EqualFold(n, want) {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %s", engine.ErrUnknownAttribute, in)
}

func accentFor(sess *engine.Session, cat *catalog.Catalog) string {
	if p, ok := sess.Archetype(); ok {
		return cat.Accent(p.Role)
	}
	return ""
}
