package config

import "errors"

var ErrInvalidConfig = errors.New("configuração inválida")
