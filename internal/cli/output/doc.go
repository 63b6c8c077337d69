// Package output formats memohalo-cli results as tables, JSON or YAML.
package output
