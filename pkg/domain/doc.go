// Package domain contains the core entities shared across the site backend:
// catalog content (vehicles, FAQs, industry secrets, events, tools), polls and
// their vote tallies, reviews, leads, and the read models returned by the
// route planner, weather advisory and playlist lookups. The types carry no
// infrastructure concerns so they can be used by storage, services and
// transport alike.
package domain
