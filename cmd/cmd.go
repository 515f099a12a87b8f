package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/adrg/xdg"
	"github.com/lai323/vocabcard/category"
	vocabconfig "github.com/lai323/vocabcard/config"
	"github.com/lai323/vocabcard/utils"
	"github.com/lai323/vocabcard/wordlist"
)

// printCategories writes one "id title count" row per category. With discover
// the ids come from the source instead of the built in table.
func printCategories(w io.Writer, loader *wordlist.Loader, discover bool) error {
	ctx := context.Background()
	ids := category.IDs()
	if discover {
		var err error
		ids, err = loader.Discover(ctx)
		if err != nil {
			return utils.FmtErrorf("discover categories", err)
		}
	}
	for _, id := range ids {
		n, err := loader.Count(ctx, id)
		if err != nil {
			utils.LogError("count %s: %s", id, err.Error())
		}
		fmt.Fprintf(w, "%-12s%-28s%d\n", id, category.Title(id), n)
	}
	return nil
}

func printPaths(w io.Writer, cfg vocabconfig.Config, configPath string) {
	if configPath == "" {
		configPath = vocabconfig.DefaultConfigPath
		if found, err := xdg.SearchConfigFile("vocabcard/vocabcard.yaml"); err == nil {
			configPath = found
		}
	}
	fmt.Fprintf(w, "config  %s\n", configPath)
	fmt.Fprintf(w, "source  %s\n", cfg.Source)
	fmt.Fprintf(w, "data    %s\n", vocabconfig.DefaultDataDir)
	fmt.Fprintf(w, "log     %s\n", cfg.LogFile)
}
