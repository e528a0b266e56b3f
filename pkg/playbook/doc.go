// Package playbook defines the playbook document model shared by every lore
// operation. A playbook is a single JSON document holding metadata about the
// task runs it has seen plus an ordered collection of bullets - short textual
// lessons tagged by category and scored by helpful/harmful feedback.
//
// Bullet identifiers are content-addressed: the same category and content
// always produce the same id, so external callers can reference bullets from
// a printed digest when reporting feedback after a run.
package playbook
