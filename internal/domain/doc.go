// Package domain defines the TeamDesk entity model: tenant-scoped members,
// tasks, check-ins and settings, plus the global credential registry entries
// and the password-stripped session projection used by the rest of the system.
package domain
