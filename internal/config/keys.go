package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type configKeyVariant struct {
	canonical string
	camel     string
}

var configKeyVariants = []configKeyVariant{
	{canonical: "width"},
	{canonical: "height"},
	{canonical: "base_width", camel: "baseWidth"},
	{canonical: "base_height", camel: "baseHeight"},
	{canonical: "font_scale_phone", camel: "fontScalePhone"},
	{canonical: "font_scale_tablet", camel: "fontScaleTablet"},
	{canonical: "icon_scale_phone", camel: "iconScalePhone"},
	{canonical: "icon_scale_tablet", camel: "iconScaleTablet"},
	{canonical: "align_tablet_bias", camel: "alignTabletBias"},
	{canonical: "profile"},
	{canonical: "output"},
	{canonical: "metric"},
	{canonical: "log_level", camel: "logLevel"},
}

var canonicalByKey = func() map[string]string {
	m := make(map[string]string, len(configKeyVariants)*2)
	for _, variant := range configKeyVariants {
		m[variant.canonical] = variant.canonical
		if variant.camel != "" {
			m[variant.camel] = variant.canonical
		}
	}
	return m
}()

func registerConfigKeyAliases(v *viper.Viper) {
	for _, variant := range configKeyVariants {
		if variant.camel != "" {
			v.RegisterAlias(variant.camel, variant.canonical)
		}
	}
}

// bindFlagKeys binds each kebab-cased CLI flag to its canonical snake_case
// config key so flag values survive the viper unmarshal.
func bindFlagKeys(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, variant := range configKeyVariants {
		kebab := strings.ReplaceAll(variant.canonical, "_", "-")
		flag := flags.Lookup(kebab)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(variant.canonical, flag); err != nil {
			return err
		}
	}
	return nil
}

func validateConfigFileKeys(configPath string) error {
	if configPath == "" {
		return nil
	}

	displayPath := configFileDisplayPath(configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("error reading config file %s: %w", displayPath, err)
	}

	if len(data) == 0 {
		return nil
	}

	var raw map[string]interface{}
	if err := yamlv3.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error parsing config file %s: %w", displayPath, err)
	}

	seen := make(map[string]string, len(raw))
	for key := range raw {
		canonical, ok := canonicalByKey[key]
		if !ok {
			return fmt.Errorf("config file %s contains invalid key %q", displayPath, key)
		}
		if previous, exists := seen[canonical]; exists && previous != key {
			return fmt.Errorf("config file %s contains both %q (%s) and %q (%s); use one naming style for %q", displayPath, previous, keyStyle(previous), key, keyStyle(key), canonical)
		}
		seen[canonical] = key
	}

	return nil
}

func keyStyle(key string) string {
	if strings.Contains(key, "_") {
		return "snake_case"
	}
	if strings.Contains(key, "-") {
		return "kebab-case"
	}
	if len(key) == 0 {
		return "unknown style"
	}
	return "camelCase"
}

func configFileDisplayPath(path string) string {
	if path == "" {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
