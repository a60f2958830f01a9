package ports

// AiryProvider supplies the Airy function of the first kind on the complex
// plane. The second kind Bi is derived from Ai by the standard rotation
// identity, so providers only need Ai.
type AiryProvider interface {
	Ai(z complex128) complex128
}
