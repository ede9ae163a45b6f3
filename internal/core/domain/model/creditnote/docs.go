// Package creditnote contains the CreditNote aggregate issued on return completion.
package creditnote
