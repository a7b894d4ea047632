// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific value objects and aggregates live in sub-packages
// (domain/user, domain/project, domain/task). This root package holds the
// sentinel error categories every entity's validation reports through.
package domain
