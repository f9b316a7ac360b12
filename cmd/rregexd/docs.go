package main

// General API documentation for swaggo. Run `swag init -g cmd/rregexd/docs.go -d ./,./internal/httpapi,./pkg/types`
// to regenerate ./docs.
//
// @title           rregexd API
// @version         1.0
// @description     HTTP API for switching regex engine versions and running playground queries.
//
// @contact.name   rregexd maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
