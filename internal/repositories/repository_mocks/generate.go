// Package repository_mocks contains generated mocks for the repository
// interfaces used in unit tests.
package repository_mocks

//go:generate mockgen -source=../interfaces.go -destination=repository_mocks.go -package=repository_mocks
