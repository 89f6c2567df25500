// Package point defines the point store used by the k-means runner.
//
// A Point carries a stable identifier, its current cluster assignment and an
// immutable coordinate vector. Cluster membership lives on the point itself;
// centroids never hold references to points.
//
// Points built with FromFlat share the caller's flat coordinate buffer, so a
// data set of hundreds of thousands of points costs one allocation for the
// Point headers and none for coordinates.
package point
