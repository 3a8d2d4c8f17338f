package cli

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlag makes an explicitly set flag override the config file and
// environment for key.
func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if flag == nil {
		panic("cli: binding unknown flag for " + key)
	}
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}
