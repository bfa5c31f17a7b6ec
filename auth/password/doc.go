// Package password provides password hashing and verification for the
// gochat auth subsystem.
//
// Hashing uses argon2id and produces self-describing PHC strings
// ($argon2id$v=19$m=...,t=...,p=...$salt$digest), so verification needs no
// parameter storage. Every call draws a fresh random salt: hashing the same
// input twice yields two different strings, and both verify.
//
// Hashing and verification are CPU and memory intensive. They never run on
// the goroutine handling request I/O: submit them through Pool, which
// executes each call on a bounded set of workers and hands the result back
// over a one-shot channel:
//
//	pool := password.NewPool(password.PoolConfig{}, password.NewArgon2Hasher(cfg), log)
//	defer pool.Close()
//	hash, err := pool.Hash(ctx, plaintext)
//	ok, err := pool.Verify(ctx, plaintext, hash)
//
// # Configuration
//
//	password:
//	  time: 1
//	  memory: 65536
//	  threads: 4
//	pool:
//	  workers: 4
//	  queue_size: 64
package password
