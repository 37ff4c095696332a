// Package validate implements the individual validation passes run over a
// workbook: the structural gate, the content scan of the record sheet and
// the entity pass over parser output. Each pass yields its findings as a
// lazy iter.Seq of report.Error in a deterministic order; sequencing and
// merging the passes is the job of the application service.
package validate
