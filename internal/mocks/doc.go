// Package mocks holds testify mocks of the store, service and context manager interfaces.
package mocks
