/*
Package search is responsible for finding album cover art over the internet.

Covers are found with an image search: the query "<artist> - <title> album cover"
is sent to the Google Custom Search JSON API restricted to images and a single
result. The link of that result is the cover URL.

Authentication uses a service account whose JSON key file is read once at
startup and scoped to https://www.googleapis.com/auth/cse.

  - Custom Search JSON API: https://developers.google.com/custom-search/v1/overview
*/
package search
