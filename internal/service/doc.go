// Package service contains the application's use cases. It validates input
// against the domain rules, delegates persistence to the store interfaces,
// and translates store errors into service-level sentinels. Services receive
// their dependencies through constructor injection and never reach into
// infrastructure directly.
package service
