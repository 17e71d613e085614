// Package openapi OpenAPI仕様ファイルを埋め込んで配信するためのパッケージ
package openapi

import _ "embed"

// Spec OpenAPI仕様（YAML形式）
//
//go:embed openapi.yaml
var Spec []byte
