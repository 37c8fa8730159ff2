// Package core contains pipeline plumbing utilities: channel helpers, worker
// configuration via context, and the locomotive that drives stages. It does
// not define business logic; it provides the scaffolding package flow uses
// to evaluate tries with controlled concurrency.
package core
