// Package pdf implements the document library port over physical PDF
// files. Reading (page text, metadata) is backed by ledongthuc/pdf;
// composite documents are recorded in memory and materialised with
// pdfcpu on save.
package pdf
