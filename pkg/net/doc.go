// Package net 提供网络查询相关的子包。
//
// 子包列表：
//   - xdns: DNS 查询封装，统一响应形状、并发批量查询、反向解析域名
package net
