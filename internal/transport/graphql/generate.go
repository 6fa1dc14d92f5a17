// Package graphql provides the GraphQL transport layer for the favourite
// things backend. It defines the schema, resolvers, and error handling for
// the category catalog and user accounts. The DateTime scalar and the
// executable schema are generated via gqlgen from the schema file.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
