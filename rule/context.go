package rule

import (
	"sync"
)

// Context carries the visited source name and the per-run report, it is owned by the host engine
type Context struct {
	SourceName string
	RunID      string
	Report     *Report

	mux        sync.RWMutex
	attributes map[string]interface{}
}

// Attribute returns run attribute
func (c *Context) Attribute(key string) (interface{}, bool) {
	c.mux.RLock()
	defer c.mux.RUnlock()
	value, ok := c.attributes[key]
	return value, ok
}

// SetAttribute sets run attribute
func (c *Context) SetAttribute(key string, value interface{}) {
	c.mux.Lock()
	defer c.mux.Unlock()
	if c.attributes == nil {
		c.attributes = map[string]interface{}{}
	}
	c.attributes[key] = value
}

// NewContext creates visit context for a source
func NewContext(sourceName string, report *Report) *Context {
	if report == nil {
		report = NewReport()
	}
	return &Context{SourceName: sourceName, Report: report}
}
