// Package omdb provides the small OMDb API client used to enrich movie and show
// records with catalog metadata.
//
// Lookups are by title with optional year and type filters. A response whose
// Response flag is not "True" surfaces as ErrNotFound so callers can treat it as
// a per-title miss; transport and status failures come back as ordinary errors.
// Title exposes the extraction rules (canonical rating, runtime minutes, genre
// list) that turn a response into catalog fields.
package omdb
