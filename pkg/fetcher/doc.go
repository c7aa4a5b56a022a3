// Package fetcher runs the download pass over the team table.
//
// A Downloader handles one team: a single GET through an ImageClient and a
// write through LogoStorage. Failures of any kind end up on the
// DownloadResult rather than being returned. The Reporter walks the table
// strictly in order, hands each result to a Printer and tallies a Summary
// whose Total always equals the table size.
package fetcher
