// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - The config command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jeranaias/numfield/internal/config"
	"github.com/jeranaias/numfield/internal/util"
)

// HandleConfig handles the config command.
func HandleConfig(args Args) error {
	return runConfig(os.Stdout, args)
}

func runConfig(w io.Writer, args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(w, args)
	case "path":
		return handleConfigPath(w, args)
	case "init":
		return handleConfigInit(w, args)
	case "get":
		return handleConfigGet(w, args)
	case "set":
		return handleConfigSet(w, args)
	default:
		return NewValidationErrorWithExample("config subcommand", args.Subcommand,
			"expected show, path, init, get or set", "numfield config show")
	}
}

// configPath returns the file config commands read and write.
func configPath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	paths, err := config.ConfigPaths()
	if err != nil {
		return "", NewCommandError("config", "path", "cannot locate config directory", err)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return config.ConfigPathTOML()
}

func handleConfigShow(w io.Writer, args Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if args.JSON {
		values := make(map[string]interface{})
		for _, key := range config.GetAllKeys() {
			v, _ := cfg.Get(key)
			values[key] = v
		}
		return NewJSONResponse("config", values).Write(w)
	}

	keys := config.GetAllKeys()
	fmt.Fprintln(w, TitleStyle.Render("numfield configuration"))
	fmt.Fprintln(w, RenderSeparator(40))
	width := columnWidth(keys)
	for _, key := range keys {
		v, _ := cfg.Get(key)
		value := DimStyle.Render("(unset)")
		if v != nil {
			value = ValueStyle.Render(fmt.Sprint(v))
		}
		fmt.Fprintf(w, "  %s  %s\n", LabelStyle.Render(util.PadRight(key, width)), value)
	}
	return nil
}

func handleConfigPath(w io.Writer, args Args) error {
	path, err := configPath(args)
	if err != nil {
		return err
	}
	_, statErr := os.Stat(path)
	if args.JSON {
		return NewJSONResponse("config", ConfigPathData{Path: path, Exists: statErr == nil}).Write(w)
	}
	fmt.Fprintln(w, path)
	return nil
}

// handleConfigInit writes the default configuration unless a file exists.
func handleConfigInit(w io.Writer, args Args) error {
	path, err := configPath(args)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return NewCommandError("config", "init", "file already exists: "+path, nil)
	}
	if err := config.SaveFile(config.Default(), path); err != nil {
		return NewCommandError("config", "init", "cannot write "+path, err)
	}
	if args.JSON {
		return NewJSONResponse("config", ConfigPathData{Path: path, Exists: true}).Write(w)
	}
	fmt.Fprintf(w, "%s wrote %s\n", SuccessStyle.Render("[OK]"), path)
	return nil
}

func handleConfigGet(w io.Writer, args Args) error {
	if args.ConfigKey == "" {
		return NewValidationErrorWithExample("key", "", "a key is required", "numfield config get field.locale")
	}
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	v, err := cfg.Get(args.ConfigKey)
	if err != nil {
		return NewNotFoundError("config key", args.ConfigKey)
	}
	if args.JSON {
		return NewJSONResponse("config", ConfigValueData{Key: args.ConfigKey, Value: v}).Write(w)
	}
	if v != nil {
		fmt.Fprintln(w, v)
	}
	return nil
}

// handleConfigSet updates one key in the config file, creating it from the
// defaults when missing, and refuses values that fail validation.
func handleConfigSet(w io.Writer, args Args) error {
	if args.ConfigKey == "" {
		return NewValidationErrorWithExample("key", "", "a key and value are required", "numfield config set field.step 0.5")
	}
	path, err := configPath(args)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if _, statErr := os.Stat(path); statErr == nil {
		if cfg, err = config.ReadFile(path); err != nil {
			return err
		}
	}

	if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
		if _, getErr := cfg.Get(args.ConfigKey); getErr != nil {
			return NewNotFoundError("config key", args.ConfigKey)
		}
		return NewValidationError(args.ConfigKey, args.ConfigVal, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.SaveFile(cfg, path); err != nil {
		return NewCommandError("config", "set", "cannot write "+path, err)
	}

	v, _ := cfg.Get(args.ConfigKey)
	if args.JSON {
		return NewJSONResponse("config", ConfigValueData{Key: args.ConfigKey, Value: v}).Write(w)
	}
	fmt.Fprintf(w, "%s %s = %v\n", SuccessStyle.Render("[OK]"), args.ConfigKey, v)
	return nil
}
