// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/user, domain/list) and
// the list authorization rules live in domain/policy. This root package holds
// the sentinel errors and the field-level validation error shared by all of
// them.
package domain
