// Package keuanganku implements the bookkeeping engine behind the KeuanganKu
// personal finance tracker. It is designed to be local-first: every record
// lives in an on-device store and every derived figure can be recomputed from
// those records.
//
// The central concern of the package is keeping the primary transaction
// ledger consistent with three dependent "satellite" ledgers:
//   - savings goals, funded by linked expense transactions,
//   - investment positions, grown by contributions and shrunk by divestments
//     with proportional cost-basis accounting,
//   - debts and receivables, paid down by linked payment transactions.
//
// A transaction may carry a link ("goal_3", "investment_7", ...) naming the
// satellite it affects. Creating such a transaction applies a kind-specific
// forward mutation to the satellite; deleting it applies the inverse mutation
// so the books read as if the transaction never existed. Editing is composed
// from these two primitives.
//
// On top of the ledger the package derives monthly cash-flow reports that
// treat investment contributions as capital transfers rather than spending,
// and split divestment proceeds into realized profit and realized loss.
//
// This package is the foundation for the `kk` command-line tool; the sibling
// packages provide the on-device store (localdb), the receipt extraction
// service (receipt) and the bulk backup sink (backup).
package keuanganku
