package integration_test

import "github.com/shopspring/decimal"

const (
	// Users seeded by testdata/catalog_up.sql
	TestAdminId       = 1
	TestCustomerId    = 2
	TestCustomerEmail = "john@example.com"
	TestOtherUserId   = 3

	// Catalog seeded by testdata/catalog_up.sql
	TestCinemaId      = 1
	TestHallId        = 1
	TestHallName      = "Hall 1"
	TestHallCapacity  = 6
	TestMovieId       = 1
	TestMovieTitle    = "Dune: Part Two"
	TestMovieDuration = 166
	TestPopcornId     = 1
	TestPopcornStock  = 10
	TestSodaId        = 2

	TestJWTSecret        = "integration-secret"
	TestPaymentReference = "pi_integration_123"
)

var TestTicketPrice = decimal.RequireFromString("12.50")
