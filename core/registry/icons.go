// Package registry — static SVG assets for the settings buttons and the
// toolbox entry. Inlined so the library has no asset files to ship.
package registry

// Heading level icons.
const (
	IconH1 = `<svg width="16" height="14" viewBox="0 0 16 14" xmlns="http://www.w3.org/2000/svg"><path d="M2 1v5h6V1h2v12H8V8H2v5H0V1h2zm12.5 0H16v12h-2V3.4l-2 .9V2.2l2.5-1.2z"/></svg>`
	IconH2 = `<svg width="17" height="14" viewBox="0 0 17 14" xmlns="http://www.w3.org/2000/svg"><path d="M2 1v5h6V1h2v12H8V8H2v5H0V1h2zm12 0c1.7 0 3 1.3 3 3 0 1-.5 1.9-1.3 2.7L13 9.4V11h4v2h-6v-2.7l3.3-3.2c.4-.4.7-.8.7-1.3 0-.6-.4-1-1-1s-1 .4-1 1h-2c0-1.7 1.3-3 3-3z"/></svg>`
	IconH3 = `<svg width="17" height="14" viewBox="0 0 17 14" xmlns="http://www.w3.org/2000/svg"><path d="M2 1v5h6V1h2v12H8V8H2v5H0V1h2zm12 0c1.7 0 3 1.1 3 2.6 0 .9-.5 1.6-1.2 2.1.8.5 1.2 1.3 1.2 2.3 0 1.7-1.3 3-3 3-1.6 0-2.9-1-3-2.6h2c.1.4.5.6 1 .6.6 0 1-.4 1-1s-.4-1-1-1h-1V5h1c.6 0 1-.4 1-1s-.4-1-1-1-1 .4-1 1h-2c.1-1.7 1.4-3 3-3z"/></svg>`
	IconH4 = `<svg width="18" height="14" viewBox="0 0 18 14" xmlns="http://www.w3.org/2000/svg"><path d="M2 1v5h6V1h2v12H8V8H2v5H0V1h2zm13 0h2v7h1v2h-1v3h-2v-3h-5V8l4-7h1zm0 3.1L12.7 8H15V4.1z"/></svg>`
)

// Alignment icons.
const (
	IconAlignLeft   = `<svg width="16" height="11" viewBox="0 0 16 11" xmlns="http://www.w3.org/2000/svg"><path d="M0 0h16v1.6H0V0zm0 4.7h10v1.6H0V4.7zm0 4.7h16V11H0V9.4z"/></svg>`
	IconAlignCenter = `<svg width="16" height="11" viewBox="0 0 16 11" xmlns="http://www.w3.org/2000/svg"><path d="M0 0h16v1.6H0V0zm3 4.7h10v1.6H3V4.7zm-3 4.7h16V11H0V9.4z"/></svg>`
	IconAlignRight  = `<svg width="16" height="11" viewBox="0 0 16 11" xmlns="http://www.w3.org/2000/svg"><path d="M0 0h16v1.6H0V0zm6 4.7h10v1.6H6V4.7zm-6 4.7h16V11H0V9.4z"/></svg>`
)

// IconToolbox is the toolbox entry asset for the header tool.
const IconToolbox = `<svg width="11" height="14" viewBox="0 0 11 14" xmlns="http://www.w3.org/2000/svg"><path d="M7.6 8.15H2.25v4.525a1.125 1.125 0 0 1-2.25 0V1.125a1.125 1.125 0 1 1 2.25 0V5.9H7.6V1.125a1.125 1.125 0 0 1 2.25 0v11.55a1.125 1.125 0 0 1-2.25 0V8.15z"/></svg>`
