//go:build tools

package tools

import (
	_ "github.com/golang/mock/mockgen"
	_ "github.com/swaggo/swag/cmd/swag"
)
