// Package docs provides generated OpenAPI documentation.
//
// classgrid API
//
//	@title			classgrid API
//	@version		1.0
//	@description	Builds a personal class timetable from a faculty timetable and a course registration document.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http
package docs

//go:generate swag init -g ../cmd/classgrid/serve.go -o ./swagger --parseDependency --parseInternal
