package main

import (
	"fmt"

	"github.com/zijistark/ck2audit/pdx"
	"github.com/zijistark/ck2audit/vfs"
)

// pathFlags is the game/mod location surface shared by subcommands.
// Values may come from flags or from a --cfg file, which is itself
// written in the script format and read with this module's own parser:
//
//	game-path = "C:/SteamLibrary/steamapps/common/Crusader Kings II"
//	mod-path = "D:/git/SWMH-BETA/SWMH"
type pathFlags struct {
	cfg    string
	game   string
	mod    string
	submod string
}

func (f *pathFlags) mergeConfigFile() error {
	if f.cfg == "" {
		return nil
	}
	p, err := pdx.ParseFile(f.cfg)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	for _, s := range p.Root().Statements() {
		if !s.Value().IsString() {
			continue
		}
		v := s.Value().AsString()
		// flags override config file values
		switch {
		case s.KeyEq("game-path") && f.game == "":
			f.game = v
		case s.KeyEq("mod-path") && f.mod == "":
			f.mod = v
		case s.KeyEq("submod-path") && f.submod == "":
			f.submod = v
		}
	}
	return nil
}

// fs builds the virtual filesystem from the merged path settings, or
// returns nil when no game path is configured.
func (f *pathFlags) fs() (*vfs.FS, error) {
	if err := f.mergeConfigFile(); err != nil {
		return nil, err
	}
	if f.submod != "" && f.mod == "" {
		return nil, fmt.Errorf("cannot specify --submod-path without also providing a --mod-path")
	}
	if f.game == "" {
		return nil, nil
	}
	v := vfs.New(f.game)
	if f.mod != "" {
		v.PushModPath(f.mod)
	}
	if f.submod != "" {
		v.PushModPath(f.submod)
	}
	return v, nil
}

// resolve maps path through the virtual filesystem when one is
// configured; otherwise the path is used as given.
func (f *pathFlags) resolve(path string) (string, error) {
	v, err := f.fs()
	if err != nil {
		return "", err
	}
	if v == nil {
		return path, nil
	}
	return v.Resolve(path)
}
