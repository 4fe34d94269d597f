// Package actions implements the business logic behind the CLI commands.
package actions
