package models

// Bucket is a named, fixed, ordered group of symbols.
type Bucket struct {
	Code    string   `json:"code"`
	Name    string   `json:"name"`
	Symbols []string `json:"product_symbols"`
}

// BucketCatalog is the immutable set of configured buckets, keyed by
// normalized code. Built once at startup; no mutation path afterwards.
type BucketCatalog struct {
	buckets []Bucket
	byCode  map[string]int
}

// NewBucketCatalog builds a catalog from an ordered bucket list.
// Later duplicates of a code are ignored.
func NewBucketCatalog(buckets []Bucket) *BucketCatalog {
	c := &BucketCatalog{
		buckets: make([]Bucket, 0, len(buckets)),
		byCode:  make(map[string]int, len(buckets)),
	}
	for _, b := range buckets {
		if _, exists := c.byCode[b.Code]; exists {
			continue
		}
		c.byCode[b.Code] = len(c.buckets)
		c.buckets = append(c.buckets, b)
	}
	return c
}

// Find returns the bucket for a normalized code.
func (c *BucketCatalog) Find(code string) (Bucket, bool) {
	i, ok := c.byCode[code]
	if !ok {
		return Bucket{}, false
	}
	return c.buckets[i], true
}

// List returns the buckets in declaration order.
func (c *BucketCatalog) List() []Bucket {
	out := make([]Bucket, len(c.buckets))
	copy(out, c.buckets)
	return out
}
