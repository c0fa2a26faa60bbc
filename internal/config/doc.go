// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file, and TAREFAS_-prefixed environment
// variables. The task server and the monitor server share this package and
// each reads only the groups it needs.
package config
