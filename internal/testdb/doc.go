// Package testdb provides database helpers for tests.
//
// OpenSQLite gives every test its own SQLite file with the schema applied.
// GetTestDBWithT connects to the PostgreSQL database named by
// TAREFAS_TEST_DATABASE_URL (or DATABASE_URL) and skips the test when neither
// is set. WithTx runs a test body inside a transaction that is always rolled
// back, so tests sharing a database do not see each other's rows.
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        s := postgres.NewPostgresTaskStore(tx, nil)
//	        // ...
//	    })
//	}
package testdb
