// Package stretch implements time-domain tempo modification at constant
// pitch (WSOLA). Stretching is mono and whole-buffer; each channel of a
// pair is processed independently.
package stretch
