// Package static provides storage-backed static file serving for routes
// declared with StaticFiles. A Store resolves keys to objects; Files turns
// a resolved key into a response with content type detection and optional
// cache headers. The FS store serves local or embedded filesystems, while
// integration packages provide remote stores such as S3.
package static
