package rpc

//go:generate colgen -imports=github.com/daniilsolovey/newshub/internal/content -funcpkg=content
//colgen:ArticleSummary,Category,Author
//colgen:ArticleSummary:Map(content.Article),IDs
//colgen:Category:Map(content),Slugs
//colgen:Author:Map(content)
