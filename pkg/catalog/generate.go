package catalog

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_catalog_client.go github.com/harwood/mediamap/pkg/catalog Client
