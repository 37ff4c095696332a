// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/medium, domain/schema,
// domain/report, domain/workbook). This root package holds sentinel errors,
// validation error types and the Optional value wrapper shared by entities.
package domain
