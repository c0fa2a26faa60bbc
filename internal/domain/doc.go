// Package domain defines Task, the single entity of the to-do service, and
// the rules every task must satisfy before it reaches storage.
package domain
