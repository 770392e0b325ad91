// Package models defines the diary client's data types: the authenticated
// Identity, the server-owned Note and the year/month filter Selection.
package models
