// Package site assembles the configuration handed to the static-site
// generator and its GOV.UK design-system plugin.
//
// A Builder turns a config.SiteConfig into two values: the plugin options
// (header, navigation, footer, stylesheets) and the generator settings
// (template engines, directories, passthrough copy rules). The header logo is
// the only input read from disk; its raw text is inlined unescaped.
package site
