// Package config registers the configuration keys with viper and loads the TOML config file.
package config

import (
	"errors"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidping/vidping/constant"
	"github.com/vidping/vidping/filesystem"
	"github.com/vidping/vidping/where"
)

// EnvKeyReplacer maps configuration keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and environment bindings, then reads the config file if there is one.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.SetTypeByDefaultValue(true)

	for _, field := range Fields("") {
		viper.SetDefault(field.Key, field.Value)
		if lo.Contains(EnvExposed, field.Key) {
			viper.MustBindEnv(field.Key)
		}
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}

// Sections lists the top level sections of the known keys, e.g. "ping" or "replay".
func Sections() []string {
	sections := lo.Uniq(lo.Map(lo.Keys(Default), func(k string, _ int) string {
		section, _, _ := strings.Cut(k, ".")
		return section
	}))
	sort.Strings(sections)
	return sections
}

// Fields returns the fields of a section sorted by key. An empty section returns every field.
func Fields(section string) []Field {
	fields := lo.Filter(lo.Values(Default), func(f Field, _ int) bool {
		return section == "" || strings.HasPrefix(f.Key, section+".")
	})

	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields
}
