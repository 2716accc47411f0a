//go:build tools

package api

import _ "github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"
