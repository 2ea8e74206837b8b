// Package database provides database connectivity for the places API.
//
// # Connection Management
//
//	db := database.NewSurrealDB(database.Config{
//	    Host:      "localhost",
//	    Port:      "8000",
//	    Namespace: "places",
//	    Database:  "main",
//	    User:      "root",
//	    Password:  "root",
//	})
//	if err := db.Connect(ctx); err != nil { ... }
//	defer db.Close()
//
// # Atomic Writes
//
// BeginTx buffers statements; Commit sends them as one
// BEGIN/COMMIT TRANSACTION block built by AtomicBatch.
//
//	tx, err := db.BeginTx(ctx)
//	if err != nil { ... }
//	_ = tx.Execute(ctx, "CREATE type::thing('place', $id) CONTENT $data", placeVars)
//	_ = tx.Execute(ctx, "UPDATE type::thing('user', $owner) SET places += type::thing('place', $id)", userVars)
//	err = tx.Commit()
//
// # Migrations
//
// Migrate applies the .surql files of a directory in lexical order.
package database
