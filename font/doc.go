// Package font resolves requested font names to renderable handles.
//
// The resolution pipeline guarantees a usable handle for any input:
//
//   - Handle: a font bound to one concrete size, answering bounding-box
//     queries and rasterizing glyph coverage. Two variants exist: a direct
//     handle backed by a parsed OpenType face, and ScaledHandle, a built-in
//     bitmap face whose output is rescaled to approximate the requested size.
//   - Resolver: applies a deterministic fallback chain (direct file path,
//     system font name, well-known font paths, scaled built-in) and never
//     fails outward. All fallback decisions happen before a Handle is handed
//     out; a returned Handle needs no further fallback logic.
//   - Cache: explicit, injectable storage for resolved handles, populated on
//     demand and read-only in steady state. The host font set is assumed
//     static for the life of the process, so there is no invalidation.
//
// Discovery enumerates selectable fonts as (display name, locator) pairs.
// Locators are opaque to callers and must be passed back verbatim to
// Resolve.
package font
