package config

import "github.com/spf13/afero"

// fs is used for reading config and certificate files. Tests override it
// with afero.NewMemMapFs().
var fs = afero.NewOsFs()
