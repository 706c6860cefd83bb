// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdminUser is the predicate function for adminuser builders.
type AdminUser func(*sql.Selector)

// BuildVersion is the predicate function for buildversion builders.
type BuildVersion func(*sql.Selector)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// Chatbot is the predicate function for chatbot builders.
type Chatbot func(*sql.Selector)

// DailyStat is the predicate function for dailystat builders.
type DailyStat func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)
